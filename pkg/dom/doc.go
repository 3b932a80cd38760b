// Package dom materializes resolved nodes into an HTML host tree.
//
// The host surface is a golang.org/x/net/html node tree. Materialize turns a
// core.Node tree into detached element nodes; Document wraps a full page
// (head and body) that a materialized tree can be attached to and rendered
// back to markup.
//
//	doc := dom.NewDocument()
//	tree, err := dom.Render(widgets.Center{Child: widgets.Text{Content: "Hi"}})
//	if err != nil {
//	    return err
//	}
//	doc.Append(doc.Body(), tree)
//	fmt.Println(doc.String())
package dom
