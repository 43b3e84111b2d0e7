package chartutil

import (
	"bytes"
	"io"
	"regexp"

	"github.com/go-echarts/go-echarts/v2/components"
)

func NewPage(title string, charters ...components.Charter) *components.Page {
	page := components.NewPage()
	page.SetPageTitle(title)
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(charters...)
	return page
}

// RenderPage renders the charts and appends the given HTML, usually a
// DatasetTable, below them.
func RenderPage(w io.Writer, title string, html string, charters ...components.Charter) error {
	page := NewPage(title, charters...)
	buf := bytes.NewBuffer(nil)
	if err := page.Render(buf); err != nil {
		return err
	}
	if len(html) == 0 {
		_, err := w.Write(buf.Bytes())
		return err
	}
	_, err := w.Write(bodyAndLastDiv.ReplaceAll(buf.Bytes(), []byte(tableStyle+`<div class="container"><div class="item" style="width:900px">`+html+`</div></div> </div></body></html>`)))
	return err
}

var bodyAndLastDiv = regexp.MustCompile(`</div>\s*</body>\s*</html>\s*$`)
var tableStyle = `<style>
table {border-collapse: collapse;background-color: #f2f2f2;width: 100%;margin: auto;box-shadow: 1px 1px 5px rgba(0,0,0,0.3);}
table caption{color: #516b91; font-weight: bold}
th, td {border: 1px solid #ccc;text-align: left;padding: 8px;}
th {background-color: #516b91;color: white;}
tr:nth-child(odd) {background-color: #f2f2f2;}
tr:nth-child(even) {background-color: #fff;}
@media screen and (max-width: 600px) {
table {display: block;overflow-x: auto;}
th, td {display: block;width: 100%;}
}
</style>`
