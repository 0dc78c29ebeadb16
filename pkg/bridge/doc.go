// Package bridge hands assembled wire documents to a rendering surface.
//
// A [Context] is created with [Init], passed to whatever dispatches
// documents and closed when the build ends:
//
//	bc, err := bridge.Init(bridge.NewWriterSurface(os.Stdout, true), logger)
//	if err != nil {
//	    return err
//	}
//	defer bc.Close()
//	resp, err := bc.Dispatch(ctx, doc)
//
// Surfaces may answer with an event mapping carrying a "type" discriminator,
// decoded by [ParseResponse].
package bridge
