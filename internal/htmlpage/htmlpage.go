// Package htmlpage assembles the standalone HTML output: the rendered SVG
// inline, plus tooltip machinery showing the full log entry per commit node.
package htmlpage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/apogeum/gitgraphz/internal/graph"
)

// BodySource yields the full log entry for a commit hash; an empty string
// degrades the tooltip without failing the page.
type BodySource interface {
	CommitBody(ctx context.Context, hash string) string
}

// Build produces the complete HTML document. baseURL, when non-empty, is
// used to turn hash occurrences inside tooltip bodies into commit links.
func Build(ctx context.Context, g *graph.Graph, svg []byte, src BodySource, baseURL string) (string, error) {
	bodies := make(map[string]string)
	for _, n := range g.CommitNodes() {
		bodies[n.ID] = tooltipBody(src.CommitBody(ctx, n.ID), n.ID, baseURL)
	}
	logs, err := json.Marshal(bodies)
	if err != nil {
		return "", fmt.Errorf("encoding tooltip bodies: %w", err)
	}

	// Drop the XML prolog and doctype the layout tool emits.
	if i := bytes.Index(svg, []byte("<svg")); i >= 0 {
		svg = svg[i:]
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString(`<meta http-equiv="content-type" content="text/html; charset=utf-8" />` + "\n")
	b.WriteString("<title>Git commit diagram</title>\n")
	b.WriteString("<style>\n" + tooltipCSS + "</style>\n")
	b.WriteString("<script>\n" + tooltipJS)
	b.WriteString("const logs = JSON.parse(`" + string(logs) + "`);\n")
	b.WriteString("</script>\n</head>\n<body onload='addListeners()'>\n")
	b.WriteString(`<span id="tooltip" class="tooltip"><p id="tooltipHeader" class="tooltipHeader">&#10818;</p><p id="tooltipContent" class="tooltipContent"></p></span>` + "\n")
	b.WriteString("<div>\n")
	b.Write(svg)
	b.WriteString("\n</div>\n</body>\n</html>")
	return b.String(), nil
}

// tooltipBody escapes a log entry for embedding and links hash occurrences
// against the repository base URL.
func tooltipBody(body, hash, baseURL string) string {
	body = strings.ReplaceAll(body, "'", "&#39;")
	body = strings.ReplaceAll(body, "\n", "<br/>")
	body = strings.ReplaceAll(body, `"`, "&quot;")
	if baseURL != "" {
		re := regexp.MustCompile(`\b(` + regexp.QuoteMeta(hash) + `[a-z0-9]*)\b`)
		body = re.ReplaceAllString(body, fmt.Sprintf("<a href='%s/commit/%s'>$1</a>", baseURL, hash))
	}
	return body
}

const tooltipCSS = `.tooltip {
    position: absolute;
    white-space: nowrap;
    display: none;
    background: #ffffcc;
    border: 1px solid black;
    padding: 5px;
    z-index: 1000;
    color: black;
    text-align: right;
}
.tooltipHeader {
    color: red;
    border-bottom: 1px solid grey;
    margin-top: 0;
    margin-bottom: 0;
}
.tooltipContent {
    text-align: left;
    margin-top: 5px;
    margin-bottom: 0;
}
`

const tooltipJS = `function moveTooltip(e) {
  if(! tooltip_is_fixed) {
    var x = (e.pageX + 20) + 'px',
        y = (e.pageY + 20) + 'px';
    tooltip.style.top = y;
    tooltip.style.left = x;
  }
}
var mouse_is_over=false;
var tooltip_is_fixed=false;
function overToolTip(e) {
  if(! tooltip_is_fixed) {
    var tooltipContent = document.getElementById('tooltipContent');
    tooltipContent.innerHTML = e.currentTarget.details;
    mouse_is_over=true;
    setTooltipVisibility();
  }
}
function outToolTip(e) {
  mouse_is_over=false;
  setTooltipVisibility();
}
function setTooltipVisibility() {
  if(mouse_is_over || tooltip_is_fixed) {
    tooltip.style.display = 'block';
  } else {
    tooltip.style.display = '';
  }
}
function clickTooltip(e) {
  tooltip_is_fixed=false;
  setTooltipVisibility();
}
function clickParentTooltip(e) {
  tooltip_is_fixed=false;
  moveTooltip(e);
  overToolTip(e);
  tooltip_is_fixed=true;
  setTooltipVisibility();
}

function addListeners() {
  var tooltips = document.querySelectorAll('.node');
  for(var i = 0; i < tooltips.length; i++) {
    tooltips[i].addEventListener('mousemove', moveTooltip);
    tooltips[i].addEventListener("mouseover", overToolTip);
    tooltips[i].addEventListener("mouseout", outToolTip);
    tooltips[i].addEventListener("click", clickParentTooltip);
    tooltips[i].details=logs[tooltips[i].getElementsByTagName("title")[0].innerHTML]
  }

  var tooltipHeader = document.getElementById('tooltipHeader');
  tooltipHeader.addEventListener('click', clickTooltip);
}
`
