// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes EstateFlow portfolio tools for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/estateflow/estateflow/internal/advisor"
	"github.com/estateflow/estateflow/internal/models"
	"github.com/estateflow/estateflow/internal/portfolio"
	"github.com/estateflow/estateflow/internal/store"
)

// Server wraps the MCP server with EstateFlow tools.
type Server struct {
	mcp     *server.MCPServer
	store   *store.Store
	advisor *advisor.Service
	now     func() time.Time
}

// Option configures the server.
type Option func(*Server)

// WithClock replaces the wall clock used for stats and overdue-day math.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New creates a new MCP server with all EstateFlow tools registered.
func New(st *store.Store, adv *advisor.Service, opts ...Option) *Server {
	s := &Server{store: st, advisor: adv, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	s.mcp = server.NewMCPServer(
		"EstateFlow",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("portfolio_overview",
		mcp.WithDescription("Current portfolio stats: potential and collected revenue, overdue count, occupancy rate."),
	), s.portfolioOverview)

	s.mcp.AddTool(mcp.NewTool("list_properties",
		mcp.WithDescription("List all managed properties with their landlord and unit count."),
	), s.listProperties)

	s.mcp.AddTool(mcp.NewTool("list_overdue_payments",
		mcp.WithDescription("List payment records currently marked overdue, with tenant and unit names."),
	), s.listOverduePayments)

	s.mcp.AddTool(mcp.NewTool("record_payment",
		mcp.WithDescription("Mark a payment record as paid. Stamps the paid date with today."),
		mcp.WithString("payment_id", mcp.Required(), mcp.Description("ID of the payment record to mark paid")),
	), s.recordPayment)

	s.mcp.AddTool(mcp.NewTool("draft_overdue_notice",
		mcp.WithDescription("Draft a polite but firm Korean overdue-payment notice for a payment record."),
		mcp.WithString("payment_id", mcp.Required(), mcp.Description("ID of the overdue payment record")),
	), s.draftOverdueNotice)

	// Resource: portfolio context summary, same text the assistant is
	// grounded on.
	s.mcp.AddResource(
		mcp.NewResource("estateflow://portfolio-summary", "Portfolio Summary",
			mcp.WithResourceDescription("Korean-language summary of the current portfolio state."),
			mcp.WithMIMEType("text/plain"),
		),
		s.readPortfolioSummaryResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) portfolioOverview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := s.store.Snapshot()
	stats := portfolio.ComputeStats(snap, models.DateOf(s.now()))
	out, _ := json.MarshalIndent(stats, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

type propertyRow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	LandlordName string `json:"landlordName,omitempty"`
	UnitCount    int    `json:"unitCount"`
}

func (s *Server) listProperties(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := s.store.Snapshot()

	landlordNames := make(map[string]string, len(snap.Landlords))
	for _, l := range snap.Landlords {
		landlordNames[l.ID] = l.Name
	}
	unitCounts := make(map[string]int, len(snap.Properties))
	for _, u := range snap.Units {
		unitCounts[u.PropertyID]++
	}

	rows := make([]propertyRow, len(snap.Properties))
	for i, p := range snap.Properties {
		rows[i] = propertyRow{
			ID:           p.ID,
			Name:         p.Name,
			Address:      p.Address,
			LandlordName: landlordNames[p.LandlordID],
			UnitCount:    unitCounts[p.ID],
		}
	}
	out, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

type overdueRow struct {
	PaymentID  string      `json:"paymentId"`
	TenantName string      `json:"tenantName,omitempty"`
	UnitName   string      `json:"unitName,omitempty"`
	Amount     int64       `json:"amount"`
	DueDate    models.Date `json:"dueDate"`
}

func (s *Server) listOverduePayments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := s.store.Snapshot()

	var rows []overdueRow
	for _, p := range portfolio.OverduePayments(snap.Payments) {
		chain := portfolio.ChainForPayment(snap, p)
		row := overdueRow{PaymentID: p.ID, Amount: p.Amount, DueDate: p.Date}
		if chain.Tenant != nil {
			row.TenantName = chain.Tenant.Name
		}
		if chain.Unit != nil {
			row.UnitName = chain.Unit.Name
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return mcp.NewToolResultText("no overdue payments"), nil
	}
	out, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) recordPayment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	paymentID, err := req.RequireString("payment_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	updated, found := s.store.UpdatePaymentStatus(paymentID, models.StatusPaid)
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("payment not found: %s", paymentID)), nil
	}
	out, _ := json.MarshalIndent(updated, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) draftOverdueNotice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	paymentID, err := req.RequireString("payment_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	snap := s.store.Snapshot()
	var payment *models.PaymentRecord
	for i := range snap.Payments {
		if snap.Payments[i].ID == paymentID {
			payment = &snap.Payments[i]
			break
		}
	}
	if payment == nil {
		return mcp.NewToolResultError(fmt.Sprintf("payment not found: %s", paymentID)), nil
	}
	chain := portfolio.ChainForPayment(snap, *payment)
	if chain.Tenant == nil {
		return mcp.NewToolResultError(fmt.Sprintf("tenant not found: %s", payment.TenantID)), nil
	}

	days := models.DateOf(s.now()).DaysSince(payment.Date)
	text := s.advisor.DraftNotice(ctx, chain.Tenant.Name, payment.Amount, payment.Type, days)
	return mcp.NewToolResultText(text), nil
}

func (s *Server) readPortfolioSummaryResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "estateflow://portfolio-summary",
			MIMEType: "text/plain",
			Text:     portfolio.ContextSummary(s.store.Snapshot()),
		},
	}, nil
}
