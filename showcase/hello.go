package showcase

import (
	"github.com/go-drift/almost/pkg/core"
	"github.com/go-drift/almost/pkg/graphics"
	"github.com/go-drift/almost/pkg/widgets"
)

// HelloApp is the canonical app: an app bar titled "Almost Flutter" above a
// body reading "Hello world".
type HelloApp struct{}

func (HelloApp) Build() core.Widget {
	return widgets.Scaffold{
		AppBar: widgets.AppBar{
			Title:           widgets.TextOf("Almost Flutter"),
			BackgroundColor: graphics.ColorRed,
		},
		Body: widgets.Container{
			ChildWidget: widgets.TextOf("Hello world"),
		},
	}
}

func buildHelloApp() core.Widget {
	return HelloApp{}
}
