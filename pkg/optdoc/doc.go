// Package optdoc implements option documents: typed configuration nodes that
// serialize to camelCase wire mappings and accept forgiving partial updates.
//
// # Descriptors Instead of Reflection
//
// A document is any type implementing [Document]. Its Fields method returns an
// explicit descriptor table built from pointers into the receiver:
//
//	type GridLineOptions struct {
//	    Color   string
//	    Style   *LineStyle
//	    Visible *bool
//	}
//
//	func (o *GridLineOptions) Fields() []optdoc.Field {
//	    return []optdoc.Field{
//	        optdoc.Value("color", &o.Color),
//	        optdoc.Optional("style", &o.Style),
//	        optdoc.Optional("visible", &o.Visible),
//	    }
//	}
//
// Each descriptor carries its [Kind] (scalar, nested document, sequence or
// mapping), a typed getter and a typed setter. [AsDict] and [Update] only ever
// talk to descriptors, so there is no runtime type reflection anywhere.
//
// # Serialization Rules
//
// [AsDict] walks fields in declaration order:
//
//  1. Unset values (nil) are omitted.
//  2. [Enum] values are replaced by their primitive code.
//  3. Nested documents are serialized recursively.
//  4. Sequences are converted element by element.
//  5. Mappings are converted value by value and their keys are camel-cased.
//  6. Empty strings are omitted. false, 0 and 0.0 are always emitted.
//  7. The wire key is the camelCase form of the field name.
//  8. A field whose wire key is exactly "backgroundOptions" is merged into
//     its parent instead of being nested.
//
// # Partial Updates
//
// [Update] applies a patch mapping. Keys may be snake_case or camelCase, unknown
// keys and nil values are ignored, and nested documents are merged rather than
// replaced. Values that cannot be coerced into the declared field type fail
// with an INVALID_TYPE error.
package optdoc
