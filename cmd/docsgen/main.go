// Command docsgen writes Markdown reference tables for the game catalogs and
// the config file schema.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/appengine-ltd/tidewater/internal/config"
	"github.com/appengine-ltd/tidewater/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := flag.String("out", filepath.Join("docs", "reference"), "output directory")
	flag.Parse()
	if err := generate(*root); err != nil {
		fatal(err)
	}
}

func generate(root string) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return err
	}
	files := []docFile{
		generateEquipmentDoc(),
		generateCatchesDoc(),
		generateTreasureDoc(),
		generateTravellersDoc(),
		generateAchievementsDoc(),
	}
	schema, err := config.SchemaJSON()
	if err != nil {
		return err
	}
	files = append(files, docFile{Name: "config.schema.json", Title: "Config file schema", Content: string(schema)})
	files = append(files, docFile{Name: "README.md", Content: generateIndex(files)})

	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Reference\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		fmt.Fprintf(&b, "- [%s](./%s)\n", f.Title, f.Name)
	}
	return b.String()
}

// table renders a Markdown table; cells are escaped.
func table(b *strings.Builder, header []string, rows [][]string) {
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(header)) + "\n")
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = escape(c)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	b.WriteString("\n")
}

func generateEquipmentDoc() docFile {
	var b strings.Builder
	b.WriteString("# Equipment\n\n")
	b.WriteString("Source: `internal/game/catalog.go`. Wait multipliers scale the bite timer; rare multipliers scale rare and late-table weights.\n\n")

	b.WriteString("## Rods\n\n")
	var rows [][]string
	for i, r := range game.Rods() {
		rows = append(rows, []string{strconv.Itoa(i), r.Name, r.CastTime.String(), formatFloat(r.SpeedMult), formatFloat(r.RareMult), gold(r.Cost)})
	}
	table(&b, []string{"Tier", "Name", "Cast", "Wait x", "Rare x", "Cost"}, rows)

	b.WriteString("## Nets\n\n")
	rows = nil
	for i, n := range game.Nets() {
		rows = append(rows, []string{strconv.Itoa(i), n.Name, n.ThrowTime.String(), formatFloat(n.SpeedMult), formatFloat(n.RareMult), gold(n.Cost)})
	}
	table(&b, []string{"Tier", "Name", "Throw", "Wait x", "Rare x", "Cost"}, rows)

	b.WriteString("## Bait\n\n")
	rows = nil
	for i, bt := range game.Baits() {
		if i == game.NoBait {
			continue
		}
		rows = append(rows, []string{strconv.Itoa(i), bt.Name, gold(bt.Cost), strconv.Itoa(bt.Amount), unlocks(i)})
	}
	table(&b, []string{"ID", "Name", "Cost", "Pack", "Unlocks"}, rows)

	return docFile{Name: "equipment.md", Title: "Equipment", Content: b.String()}
}

func unlocks(bait int) string {
	var names []string
	for _, r := range game.RareFishTable() {
		if r.Bait == bait {
			names = append(names, r.Name)
		}
	}
	return strings.Join(names, ", ")
}

func generateCatchesDoc() docFile {
	var b strings.Builder
	b.WriteString("# Catches\n\n")
	b.WriteString("Weights are relative within each table. Prices are what the rod shop's sell counter pays.\n\n")

	b.WriteString("## Rod table\n\n")
	var rows [][]string
	for _, c := range game.FishTable() {
		rows = append(rows, []string{c.Name, formatFloat(c.Weight), price(c.Name)})
	}
	table(&b, []string{"Name", "Weight", "Price"}, rows)

	b.WriteString("## Rare fish\n\n")
	rows = nil
	baits := game.Baits()
	for _, r := range game.RareFishTable() {
		rows = append(rows, []string{r.Name, formatFloat(r.Weight), baits[r.Bait].Name, formatFloat(r.MarkerSpeed), formatFloat(r.ZoneWidth), price(r.Name)})
	}
	table(&b, []string{"Name", "Weight", "Bait", "Marker speed", "Zone", "Price"}, rows)

	b.WriteString("## Net table\n\n")
	rows = nil
	for _, c := range game.CrustaceanTable() {
		rows = append(rows, []string{c.Name, formatFloat(c.Weight), price(c.Name)})
	}
	table(&b, []string{"Name", "Weight", "Price"}, rows)

	return docFile{Name: "catches.md", Title: "Catches", Content: b.String()}
}

func generateTreasureDoc() docFile {
	var b strings.Builder
	b.WriteString("# Treasure\n\n")
	b.WriteString("Rolled when a treasure chest is opened with the eat key. Loot with a heal value is eaten as healing; the rest are curios.\n\n")
	var rows [][]string
	for _, t := range game.TreasureTable() {
		heal := "-"
		if t.Heal > 0 {
			heal = "+" + strconv.Itoa(t.Heal) + " HP"
		}
		rows = append(rows, []string{t.Name, formatFloat(t.Weight), heal, price(t.Name)})
	}
	table(&b, []string{"Name", "Weight", "Heal", "Price"}, rows)
	return docFile{Name: "treasure.md", Title: "Treasure", Content: b.String()}
}

func generateTravellersDoc() docFile {
	var b strings.Builder
	b.WriteString("# Travellers\n\n")
	var rows [][]string
	for _, n := range game.NPCTypes() {
		rows = append(rows, []string{n.Name, yesNo(n.Friendly), formatFloat(n.Weight), yesNo(n.BigReward), strings.Join(n.Dialogue, " / ")})
	}
	table(&b, []string{"Name", "Friendly", "Weight", "Big reward", "Lines"}, rows)
	return docFile{Name: "travellers.md", Title: "Travellers", Content: b.String()}
}

func generateAchievementsDoc() docFile {
	var b strings.Builder
	b.WriteString("# Achievements\n\n")
	var rows [][]string
	for _, a := range game.Achievements() {
		rows = append(rows, []string{a.Name, a.Description, strconv.Itoa(a.Goal)})
	}
	table(&b, []string{"Name", "Description", "Goal"}, rows)
	return docFile{Name: "achievements.md", Title: "Achievements", Content: b.String()}
}

func price(name string) string {
	for _, it := range []game.Item{game.FishItem(name), game.CrustaceanItem(name)} {
		if p, ok := game.SellPrice(it); ok {
			return gold(p)
		}
	}
	for _, t := range game.TreasureTable() {
		if t.Name == name {
			if p, ok := game.SellPrice(game.LootItem(t)); ok {
				return gold(p)
			}
		}
	}
	return "-"
}

func gold(n int) string { return strconv.Itoa(n) + "g" }

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
