// Package d3tree assembles self-contained HTML documents that draw a rooted
// tree as a Reingold-Tilford layout in the browser.
//
// The package does no layout math. It serializes the tree to JSON, fills a
// fixed catalog of page/style/script templates with render options, and
// concatenates the blocks in a fixed order. The tidy-tree algorithm itself is
// owned by the client-side D3 script referenced from the document.
//
// # Pipeline
//
// The stages mirror the assembly order of the emitted document:
//
//  1. Serialize: encode the tree as a `var root = ...;` script assignment
//  2. Compose: substitute render options into the template catalog
//  3. Assemble: concatenate blocks, optionally wrapped in a page shell
//  4. Dispatch: write to the console, a file, or a file plus iframe snippet
//
// # Usage
//
//	root := tree.New("Canada", tree.New("PEI", tree.New("Charlottetown")))
//	a := d3tree.NewAssembler()
//	result, err := a.Render(root, d3tree.NewConfig(d3tree.WithZoom()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Mode)
//
// Rendering is synchronous and deterministic apart from auto-generated
// output file names, which come from an injectable token source.
package d3tree
