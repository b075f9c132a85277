package d3tree

// Variant selects between the two script families in the catalog. The choice
// is binary and fixed at composition time; variants are never mixed.
type Variant string

const (
	// VariantStatic renders the tree without pan/zoom behaviour.
	VariantStatic Variant = "static"

	// VariantZoom adds scroll-wheel zoom and drag-pan event bindings.
	VariantZoom Variant = "zoom"
)

// The template catalog. Each block is a parameterized text blob whose
// {{name}} placeholders come from the closed set bound in composer.go.
// The emitted document concatenates: pageHead (standalone only), styleSheet,
// scriptPrefix, the serialized tree assignment, a script suffix, and
// bodyClose (standalone only).

const pageHeadTemplate = `<!DOCTYPE html>
<meta charset="utf-8">
<body>
`

const styleSheetTemplate = `<style>

.link {
  fill: none;
  stroke: {{linkColour}};
  stroke-opacity: {{linkOpacity}};
  stroke-width: 1.5px;
}

.node circle {
  fill: {{nodeColour}};
  opacity: {{opacity}};
  stroke-width: 1.5px;
}

.node text {
  font: {{fontsize}}px serif;
  fill: {{textColour}};
  opacity: {{opacity}};
  pointer-events: none;
}

</style>
`

const scriptPrefixTemplate = `<script src={{d3Script}}></script>

<script>
`

// scriptSuffixStaticTemplate draws the radial tidy tree once, with mouseover
// label emphasis but no viewport behaviour.
const scriptSuffixStaticTemplate = `
var diameter = {{diameter}};

var tree = d3.layout.tree()
    .size([360, diameter / 2 - 120])
    .separation(function(a, b) { return (a.parent == b.parent ? 1 : 2) / a.depth; });

var diagonal = d3.svg.diagonal.radial()
    .projection(function(d) { return [d.y, d.x / 180 * Math.PI]; });

var svg = d3.select("body").append("svg")
    .attr("width", {{width}})
    .attr("height", {{height}})
  .append("g")
    .attr("transform", "translate(" + {{width}} / 2 + "," + {{height}} / 2 + ")");

var nodes = tree.nodes(root),
    links = tree.links(nodes);

var link = svg.selectAll(".link")
    .data(links)
  .enter().append("path")
    .attr("class", "link")
    .attr("d", diagonal);

var node = svg.selectAll(".node")
    .data(nodes)
  .enter().append("g")
    .attr("class", "node")
    .attr("transform", function(d) { return "rotate(" + (d.x - 90) + ")translate(" + d.y + ")"; });

node.append("circle")
    .attr("r", 4.5);

node.append("text")
    .attr("dy", ".31em")
    .attr("text-anchor", function(d) { return d.x < 180 ? "start" : "end"; })
    .attr("transform", function(d) { return d.x < 180 ? "translate(8)" : "rotate(180)translate(-8)"; })
    .text(function(d) { return d.name; })
    .on("mouseover", function(d) { d3.select(this).style("font-size", "{{fontsizeBig}}px"); })
    .on("mouseout", function(d) { d3.select(this).style("font-size", "{{fontsize}}px"); });

d3.select(self.frameElement).style("height", "{{height}}px");

</script>
`

// scriptSuffixZoomTemplate is the zoomable sibling of the static suffix: the
// drawing group is wrapped in a d3.behavior.zoom() surface that rescales and
// translates on scroll-wheel and drag events.
const scriptSuffixZoomTemplate = `
var diameter = {{diameter}};

var tree = d3.layout.tree()
    .size([360, diameter / 2 - 120])
    .separation(function(a, b) { return (a.parent == b.parent ? 1 : 2) / a.depth; });

var diagonal = d3.svg.diagonal.radial()
    .projection(function(d) { return [d.y, d.x / 180 * Math.PI]; });

var vis = d3.select("body").append("svg")
    .attr("width", {{width}})
    .attr("height", {{height}})
    .attr("pointer-events", "all")
  .append("g")
    .call(d3.behavior.zoom().scaleExtent([0.3, 8]).on("zoom", redraw))
  .append("g");

vis.append("rect")
    .attr("width", {{width}})
    .attr("height", {{height}})
    .attr("fill", "white");

var svg = vis.append("g")
    .attr("transform", "translate(" + {{width}} / 2 + "," + {{height}} / 2 + ")");

function redraw() {
  vis.attr("transform", "translate(" + d3.event.translate + ")scale(" + d3.event.scale + ")");
}

var nodes = tree.nodes(root),
    links = tree.links(nodes);

var link = svg.selectAll(".link")
    .data(links)
  .enter().append("path")
    .attr("class", "link")
    .attr("d", diagonal);

var node = svg.selectAll(".node")
    .data(nodes)
  .enter().append("g")
    .attr("class", "node")
    .attr("transform", function(d) { return "rotate(" + (d.x - 90) + ")translate(" + d.y + ")"; });

node.append("circle")
    .attr("r", 4.5);

node.append("text")
    .attr("dy", ".31em")
    .attr("text-anchor", function(d) { return d.x < 180 ? "start" : "end"; })
    .attr("transform", function(d) { return d.x < 180 ? "translate(8)" : "rotate(180)translate(-8)"; })
    .text(function(d) { return d.name; })
    .on("mouseover", function(d) { d3.select(this).style("font-size", "{{fontsizeBig}}px"); })
    .on("mouseout", function(d) { d3.select(this).style("font-size", "{{fontsize}}px"); });

d3.select(self.frameElement).style("height", "{{height}}px");

</script>
`

// bodyCloseMarker terminates a standalone document.
const bodyCloseMarker = `</body>
`

// scriptSuffixTemplate returns the suffix template for the given variant.
func scriptSuffixTemplate(v Variant) string {
	if v == VariantZoom {
		return scriptSuffixZoomTemplate
	}
	return scriptSuffixStaticTemplate
}
