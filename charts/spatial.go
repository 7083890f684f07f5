package charts

import "github.com/netkit-wifi/netkit/internal/netkiterr"

// HeatmapCell is one grid cell's value.
type HeatmapCell struct {
	Row, Col int
	Value    float64
}

// HeatmapData is a 2-D grid of scalar values, indexed by row and
// column within a fixed-size grid.
type HeatmapData struct {
	Title  string
	Width  int
	Height int
	Cells  []HeatmapCell
}

// NewHeatmapData validates that width/height are positive and every
// cell falls within the grid.
func NewHeatmapData(title string, width, height int, cells []HeatmapCell) (HeatmapData, error) {
	if width <= 0 || height <= 0 {
		return HeatmapData{}, netkiterr.NewInvalidInput("dimensions", "width and height must be positive")
	}
	for _, c := range cells {
		if c.Row < 0 || c.Row >= height || c.Col < 0 || c.Col >= width {
			return HeatmapData{}, netkiterr.NewInvalidInput("cells", "cell coordinates must fall within the grid")
		}
	}
	return HeatmapData{Title: title, Width: width, Height: height, Cells: cells}, nil
}

// GraphNode is one node in a GraphData topology diagram.
type GraphNode struct {
	ID    string
	Label string
	Color string
}

// GraphEdge is one edge between two GraphNode IDs.
type GraphEdge struct {
	From, To string
	Weight   float64
}

// GraphData is a node/edge diagram, e.g. for rendering a mesh
// topology.
type GraphData struct {
	Title string
	Nodes []GraphNode
	Edges []GraphEdge
}

// NewGraphData validates a non-empty node set and that every edge
// references known node IDs.
func NewGraphData(title string, nodes []GraphNode, edges []GraphEdge) (GraphData, error) {
	if len(nodes) == 0 {
		return GraphData{}, netkiterr.NewInvalidInput("nodes", "graph must have at least one node")
	}
	ids := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		ids[n.ID] = true
	}
	for _, e := range edges {
		if !ids[e.From] || !ids[e.To] {
			return GraphData{}, netkiterr.NewInvalidInput("edges", "edge endpoints must reference known node IDs")
		}
	}
	return GraphData{Title: title, Nodes: nodes, Edges: edges}, nil
}

// ChannelOccupant is one AP occupying a channel in a
// ChannelDiagramData.
type ChannelOccupant struct {
	BSSIDLabel string
	Channel    int
	Width      int // MHz
}

// ChannelDiagramData visualizes channel occupancy across a band, e.g.
// for rendering the output of the channel planner.
type ChannelDiagramData struct {
	Title     string
	Channels  []int
	Occupants []ChannelOccupant
}

// NewChannelDiagramData validates a non-empty channel axis and that
// every occupant sits on a listed channel.
func NewChannelDiagramData(title string, channels []int, occupants []ChannelOccupant) (ChannelDiagramData, error) {
	if len(channels) == 0 {
		return ChannelDiagramData{}, netkiterr.NewInvalidInput("channels", "channel diagram must list at least one channel")
	}
	valid := make(map[int]bool, len(channels))
	for _, c := range channels {
		valid[c] = true
	}
	for _, o := range occupants {
		if !valid[o.Channel] {
			return ChannelDiagramData{}, netkiterr.NewInvalidInput("occupants", "occupant channel must be one of the diagram's channels")
		}
	}
	return ChannelDiagramData{Title: title, Channels: channels, Occupants: occupants}, nil
}
