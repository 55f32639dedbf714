// Package render prints client results as tables or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/CannonJunior/x-uav/client"
)

// Format is an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat accepts "table" and "json".
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatTable, "":
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported output format %q (want table or json)", s)
}

// Printer writes results to w in a fixed format.
type Printer struct {
	w      io.Writer
	format Format
}

// New returns a Printer.
func New(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// JSON writes v as indented JSON.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table renders rows under headers.
func (p *Printer) Table(headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(p.w)
	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to append rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// Message writes a plain line in table mode and nothing in JSON mode.
func (p *Printer) Message(format string, args ...any) {
	if p.format == FormatJSON {
		return
	}
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Health prints a health report.
func (p *Printer) Health(h *client.HealthStatus) error {
	if p.format == FormatJSON {
		return p.JSON(h)
	}
	return p.Table([]string{"Status", "Version", "Database"}, [][]string{{h.Status, dash(h.Version), dash(h.Database)}})
}

// Stats prints the totals and each grouping.
func (p *Printer) Stats(s *client.Stats) error {
	if p.format == FormatJSON {
		return p.JSON(s)
	}
	rows := [][]string{{"total", "", strconv.Itoa(s.Total)}}
	add := func(group string, buckets []client.StatBucket) {
		for _, b := range buckets {
			rows = append(rows, []string{group, dash(b.Label()), strconv.Itoa(b.Count())})
		}
	}
	add("country", s.ByCountry)
	add("type", s.ByType)
	add("status", s.ByStatus)
	return p.Table([]string{"Group", "Value", "Count"}, rows)
}

// UAVs prints one row per UAV.
func (p *Printer) UAVs(list *client.UAVList) error {
	if p.format == FormatJSON {
		return p.JSON(list)
	}
	rows := make([][]string, 0, len(list.UAVs))
	for _, u := range list.UAVs {
		rows = append(rows, []string{
			u.Designation, str(u.Name), str(u.CountryOfOrigin), str(u.Type),
			str(u.OperationalStatus), num(u.MaxSpeedKmh), num(u.RangeKm), num(u.EnduranceHours),
		})
	}
	if err := p.Table([]string{"Designation", "Name", "Country", "Type", "Status", "Max km/h", "Range km", "Endurance h"}, rows); err != nil {
		return err
	}
	p.Message("%d of %d UAVs", len(list.UAVs), list.Total)
	return nil
}

// UAV prints a field/value sheet for one UAV.
func (p *Printer) UAV(u *client.UAV) error {
	if p.format == FormatJSON {
		return p.JSON(u)
	}
	rows := [][]string{
		{"Designation", u.Designation},
		{"Name", str(u.Name)},
		{"Manufacturer", str(u.Manufacturer)},
		{"Country", str(u.CountryOfOrigin)},
		{"NATO class", str(u.NATOClass)},
		{"Type", str(u.Type)},
		{"Status", str(u.OperationalStatus)},
		{"Wingspan m", num(u.WingspanMeters)},
		{"Max takeoff kg", num(u.MaxTakeoffWeightKg)},
		{"Engine", str(u.EngineType)},
		{"Cruise km/h", num(u.CruiseSpeedKmh)},
		{"Max km/h", num(u.MaxSpeedKmh)},
		{"Ceiling m", num(u.ServiceCeilingMeters)},
		{"Range km", num(u.RangeKm)},
		{"Endurance h", num(u.EnduranceHours)},
		{"Primary function", str(u.PrimaryFunction)},
		{"Armament", list(u.Armament)},
		{"Operators", list(u.Operators)},
		{"Unit cost USD", num(u.UnitCostUSD)},
	}
	return p.Table([]string{"Field", "Value"}, rows)
}

// Values prints the distinct values of a filter dimension.
func (p *Printer) Values(dim client.Dimension, values []string) error {
	if p.format == FormatJSON {
		return p.JSON(values)
	}
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		rows = append(rows, []string{v})
	}
	return p.Table([]string{string(dim)}, rows)
}

// Armaments prints one row per armament.
func (p *Printer) Armaments(items []client.Armament, total int) error {
	if p.format == FormatJSON {
		return p.JSON(map[string]any{"total": total, "armaments": items})
	}
	rows := make([][]string, 0, len(items))
	for _, a := range items {
		rows = append(rows, []string{a.Designation, str(a.Name), str(a.WeaponType), str(a.WeaponClass), str(a.GuidanceType), str(a.Country)})
	}
	return p.Table([]string{"Designation", "Name", "Weapon type", "Class", "Guidance", "Country"}, rows)
}

// Armament prints a field/value sheet for one armament, including untyped fields.
func (p *Printer) Armament(a *client.Armament) error {
	if p.format == FormatJSON {
		return p.JSON(a)
	}
	rows := [][]string{
		{"Designation", a.Designation},
		{"Name", str(a.Name)},
		{"Weapon type", str(a.WeaponType)},
		{"Class", str(a.WeaponClass)},
		{"Guidance", str(a.GuidanceType)},
		{"Country", str(a.Country)},
		{"Manufacturer", str(a.Manufacturer)},
	}
	keys := make([]string, 0, len(a.Extra))
	for k := range a.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rows = append(rows, []string{k, strings.Trim(string(a.Extra[k]), `"`)})
	}
	return p.Table([]string{"Field", "Value"}, rows)
}

// Platforms prints one page of the v1 catalog.
func (p *Printer) Platforms(page *client.PlatformPage) error {
	if p.format == FormatJSON {
		return p.JSON(page)
	}
	rows := make([][]string, 0, len(page.Platforms))
	for _, pl := range page.Platforms {
		rows = append(rows, []string{pl.ID, pl.Name, str(pl.Manufacturer), str(pl.Country), str(pl.Category)})
	}
	if err := p.Table([]string{"ID", "Name", "Manufacturer", "Country", "Category"}, rows); err != nil {
		return err
	}
	p.Message("showing %d-%d of %d", page.Skip+1, page.Skip+len(page.Platforms), page.Total)
	if page.HasMore() {
		p.Message("next page: --skip %d --limit %d", page.Skip+len(page.Platforms), page.Limit)
	}
	return nil
}

// Platform prints one v1 platform.
func (p *Printer) Platform(pl *client.Platform) error {
	if p.format == FormatJSON {
		return p.JSON(pl)
	}
	return p.Table([]string{"Field", "Value"}, [][]string{
		{"ID", pl.ID},
		{"Name", pl.Name},
		{"Designation", str(pl.Designation)},
		{"Manufacturer", str(pl.Manufacturer)},
		{"Country", str(pl.Country)},
		{"Category", str(pl.Category)},
		{"Status", str(pl.DevelopmentStatus)},
		{"First flight", str(pl.FirstFlight)},
		{"Specifications", strconv.Itoa(len(pl.Specifications))},
	})
}

// SearchResults prints raw v1 search hits, one compact JSON document per row.
func (p *Printer) SearchResults(res *client.SearchResults) error {
	if p.format == FormatJSON {
		return p.JSON(res)
	}
	rows := make([][]string, 0, len(res.Results))
	for i, r := range res.Results {
		rows = append(rows, []string{strconv.Itoa(i + 1), string(r)})
	}
	if err := p.Table([]string{"#", "Result"}, rows); err != nil {
		return err
	}
	p.Message("%d results", res.Total)
	return nil
}

// Suggestions prints search completions.
func (p *Printer) Suggestions(s *client.Suggestions) error {
	if p.format == FormatJSON {
		return p.JSON(s)
	}
	rows := make([][]string, 0, len(s.Suggestions))
	for _, v := range s.Suggestions {
		rows = append(rows, []string{v})
	}
	return p.Table([]string{"Suggestion"}, rows)
}

// Graph prints nodes and then edges.
func (p *Printer) Graph(g *client.Graph) error {
	if p.format == FormatJSON {
		return p.JSON(g)
	}
	nodes := make([][]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes = append(nodes, []string{n.ID, dash(n.Label), dash(n.Type)})
	}
	if err := p.Table([]string{"Node", "Label", "Type"}, nodes); err != nil {
		return err
	}
	edges := make([][]string, 0, len(g.Edges))
	for _, e := range g.Edges {
		edges = append(edges, []string{e.From, e.To, dash(e.Label)})
	}
	return p.Table([]string{"From", "To", "Label"}, edges)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func str(s *string) string {
	if s == nil {
		return "-"
	}
	return dash(*s)
}

func num(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func list(ss []string) string {
	if len(ss) == 0 {
		return "-"
	}
	return strings.Join(ss, ", ")
}
