// Package data defines the typed data points carried by series and the time
// parsing shared by point setters and the document assembler.
//
// Points are option documents, so they serialize with [optdoc.AsDict] and can
// be filled from decoded records with [optdoc.Update]. Their time is a
// [Timestamp] in unix seconds; setters accept epoch numbers, ISO-8601
// date-times (naive values are UTC) and YYYY-MM-DD dates.
//
// Converting whole tables is left to callers. [FromRecord] handles one
// record given a column mapping.
package data
