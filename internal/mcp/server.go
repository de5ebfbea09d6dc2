package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/text/language"

	"github.com/joescharf/gedref/internal/chart"
	"github.com/joescharf/gedref/internal/gedcom"
	"github.com/joescharf/gedref/internal/i18n"
	"github.com/joescharf/gedref/internal/locale"
	"github.com/joescharf/gedref/internal/models"
	"github.com/joescharf/gedref/internal/store"
)

// Server wraps the reference data and tree store and exposes them as MCP
// tools.
type Server struct {
	store   store.Store
	bundle  *i18n.Bundle
	theme   chart.Theme
	version string
}

// NewServer creates the MCP server wrapper. The store may be nil, in which
// case the tree tools report an error.
func NewServer(s store.Store, bundle *i18n.Bundle, theme chart.Theme, version string) *Server {
	return &Server{store: s, bundle: bundle, theme: theme, version: version}
}

// MCPServer returns a configured mcp-go server with all tools registered.
func (s *Server) MCPServer() *server.MCPServer {
	srv := server.NewMCPServer("gedref", s.version, server.WithToolCapabilities(true))

	srv.AddTool(s.labelTool())
	srv.AddTool(s.picklistTool())
	srv.AddTool(s.newUIDTool())
	srv.AddTool(s.localeTerritoryTool())
	srv.AddTool(s.treeStatsTool())
	srv.AddTool(s.sourcesChartTool())

	return srv
}

// ServeStdio starts the stdio transport, blocking until ctx is cancelled.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := s.MCPServer()
	stdioServer := server.NewStdioServer(srv)
	return stdioServer.Listen(ctx, os.Stdin, os.Stdout)
}

func (s *Server) translator(request mcp.CallToolRequest) *i18n.Translator {
	tag, _ := s.bundle.Parse(request.GetString("language", i18n.BaseLocale))
	if tag == language.Und {
		tag = s.bundle.Match()
	}
	return s.bundle.Translator(tag)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// ---------------------------------------------------------------------------
// Tool definitions and handlers
// ---------------------------------------------------------------------------

// gedcom_label
func (s *Server) labelTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("gedcom_label",
		mcp.WithDescription("Translate a GEDCOM tag (e.g. BIRT, DEAT:PLAC, _UID) to its human-readable label. Optionally render a label/value pair as HTML."),
		mcp.WithString("tag", mcp.Required(), mcp.Description("GEDCOM tag code")),
		mcp.WithString("value", mcp.Description("Value to pair with the label")),
		mcp.WithString("language", mcp.Description("BCP 47 language tag (default: en)")),
	)
	return tool, s.handleLabel
}

func (s *Server) handleLabel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tag, err := request.RequireString("tag")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: tag"), nil
	}
	reg := gedcom.NewRegistry(s.translator(request))

	result := map[string]any{
		"tag":   tag,
		"label": reg.Label(tag),
		"known": reg.IsTag(tag),
	}
	if v := request.GetString("value", ""); v != "" {
		result["html"] = string(reg.LabelValue(tag, v, ""))
	}
	return jsonResult(result)
}

// gedcom_picklist
func (s *Server) picklistTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("gedcom_picklist",
		mcp.WithDescription("List the facts that can be added to a record type, sorted by label."),
		mcp.WithString("record_type", mcp.Required(), mcp.Description("Record type: INDI, FAM, SOUR, REPO, PLAC or NAME")),
		mcp.WithString("language", mcp.Description("BCP 47 language tag (default: en)")),
	)
	return tool, s.handlePicklist
}

func (s *Server) handlePicklist(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rt, err := request.RequireString("record_type")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: record_type"), nil
	}
	reg := gedcom.NewRegistry(s.translator(request))
	return jsonResult(reg.PicklistFacts(gedcom.RecordType(rt)))
}

// gedcom_new_uid
func (s *Server) newUIDTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("gedcom_new_uid",
		mcp.WithDescription("Generate a new _UID value with checksum, compatible with PAF, Legacy and RootsMagic."),
	)
	return tool, s.handleNewUID
}

func (s *Server) handleNewUID(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(gedcom.NewUID()), nil
}

// locale_territory
func (s *Server) localeTerritoryTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("locale_territory",
		mcp.WithDescription("Resolve a locale code such as ar-IL or mas_TZ to its language and territory."),
		mcp.WithString("locale", mcp.Required(), mcp.Description("Locale code")),
	)
	return tool, s.handleLocaleTerritory
}

func (s *Server) handleLocaleTerritory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("locale")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: locale"), nil
	}
	l, err := locale.Parse(code)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"locale":         l.Code(),
		"language":       l.Language(),
		"direction":      string(l.Direction()),
		"territory":      l.Territory().Code(),
		"territory_name": l.Territory().Name(language.English),
	})
}

// tree_stats
func (s *Server) treeStatsTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("tree_stats",
		mcp.WithDescription("Get record counts for an imported tree: individuals and families with sources, media by type."),
		mcp.WithString("tree", mcp.Required(), mcp.Description("Tree name or ID")),
	)
	return tool, s.handleTreeStats
}

func (s *Server) handleTreeStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("tree")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: tree"), nil
	}
	t, err := s.resolveTree(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	st, err := s.store.Stats(ctx, t.ID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to compute stats: %v", err)), nil
	}
	return jsonResult(st)
}

// tree_sources_chart
func (s *Server) sourcesChartTool() (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("tree_sources_chart",
		mcp.WithDescription("Get the pie chart URL showing how many individuals in a tree cite a source."),
		mcp.WithString("tree", mcp.Required(), mcp.Description("Tree name or ID")),
		mcp.WithString("size", mcp.Description("Chart size as WIDTHxHEIGHT")),
		mcp.WithString("language", mcp.Description("BCP 47 language tag (default: en)")),
	)
	return tool, s.handleSourcesChart
}

func (s *Server) handleSourcesChart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("tree")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: tree"), nil
	}
	t, err := s.resolveTree(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	st, err := s.store.Stats(ctx, t.ID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to compute stats: %v", err)), nil
	}

	tr := s.translator(request)
	c, ok, err := chart.NewRenderer(tr, s.theme).SourcesChartData(
		tr.Translate("Individuals with sources"), st.Individuals, st.IndividualsWithSources,
		chart.Options{Size: request.GetString("size", "")})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !ok {
		return mcp.NewToolResultText("tree has no individuals"), nil
	}
	return jsonResult(c)
}

// resolveTree tries to find a tree by name first, then by ID.
func (s *Server) resolveTree(ctx context.Context, name string) (*models.Tree, error) {
	if s.store == nil {
		return nil, errors.New("no tree database configured")
	}
	t, err := s.store.GetTreeByName(ctx, name)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	t, err = s.store.GetTree(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("tree not found: %s", name)
	}
	return t, nil
}
