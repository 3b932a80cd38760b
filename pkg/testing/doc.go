// Package testing provides a widget testing framework for almost.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions on the host tree:
//
//	func TestMyWidget(t *testing.T) {
//	    tester := almosttest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(MyWidget{})
//
//	    if !tester.Find(almosttest.ByText("Submit")).Exists() {
//	        t.Error("expected 'Submit' text")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare host tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/my_widget.snapshot.json")
//
// Update snapshots with:
//
//	ALMOST_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import almosttest "github.com/go-drift/almost/pkg/testing"
package testing
