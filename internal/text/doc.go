// Package text provides content measurers for text-bearing layout nodes.
//
// CellMeasurer counts terminal cells, FaceMeasurer counts pixels of a font
// face. Both split text into lines, expand tabs, and store the prepared
// lines on the node for renderers.
package text
