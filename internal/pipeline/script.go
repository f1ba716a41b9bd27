package pipeline

import (
	"fmt"
	"html/template"
	"io"
)

// scriptLoader inserts an async <script src=F> before the first script
// element of the document.
const scriptLoader = "<script>" +
	"(function(d,src){" +
	"var e=d.createElement('script'),s=d.getElementsByTagName('script')[0];" +
	"e.src=src;" +
	"e.async=1;" +
	"s.parentNode.insertBefore(e,s);" +
	"})(document,'%s');" +
	"</script>\n"

// WriteScriptLoader writes the async loader for the script file name.
func WriteScriptLoader(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, scriptLoader, template.JSEscapeString(name))
	return err
}
