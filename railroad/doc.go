// Package railroad lays out and draws railroad (syntax) diagrams as SVG.
//
// A diagram is a tree of Nodes. Every node has a width, a height and an entry
// height: the distance from its top edge to the horizontal line that enters
// on the left and leaves on the right. Composite nodes place their children
// so that these lines connect.
//
// Usage:
//
//	root := railroad.NewSequence(
//	    railroad.NewStart(),
//	    railroad.NewTerminal("SELECT"),
//	    railroad.NewEnd(),
//	)
//	d := railroad.NewDiagram(root, railroad.DefaultCSS)
//	fmt.Println(d)
package railroad
