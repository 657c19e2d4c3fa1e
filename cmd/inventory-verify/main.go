// Command inventory-verify performs integrity checks over the packaged HRRR
// layer tables: every fixed (region, product, forecast-hour set) combination
// must load, every template must expand for every forecast hour in its set,
// layer order must survive expansion, and the expanded hours must agree with
// the forecast-cycle rules.
//
// Run it after editing the packaged data:
//
//	go run ./cmd/inventory-verify
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/hrrr-inventory/internal/config"
	"github.com/couchcryptid/hrrr-inventory/internal/domain"
	"github.com/couchcryptid/hrrr-inventory/internal/inventory"
	"github.com/couchcryptid/hrrr-inventory/internal/observability"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	if code := run(logger, metrics); code != 0 {
		os.Exit(code)
	}
}

func run(logger *slog.Logger, metrics *observability.Metrics) int {
	fmt.Println("=== HRRR Inventory Data Validation ===")
	fmt.Println()

	reg, err := inventory.NewRegistry(logger, metrics)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load registry: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateTables(reg),
		validateExpansion(reg),
		validateOrdering(reg),
		validateCycleRules(),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	for _, region := range domain.Regions() {
		ref := domain.LatestReferenceTime(region)
		fmt.Printf("Latest %s cycle: %s (%s)\n",
			region, ref.Format("2006-01-02T15Z"), domain.ForecastCycleTypeFromReferenceTime(ref))
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phase 1: Table Completeness ──
// Every fixed combination has a table with ascending row numbers.

func validateTables(reg *inventory.Registry) *phase {
	p := &phase{name: "Phase 1: Table Completeness"}

	keys := reg.Keys()
	if len(keys) != 16 {
		p.errorf("expected 16 tables, registry has %d", len(keys))
	}

	for _, key := range keys {
		entries, err := reg.Templates(key.Region, key.Product, key.Set)
		if err != nil {
			p.errorf("%s: %v", key, err)
			continue
		}
		prev := 0
		for _, e := range entries {
			if e.RowNumber <= prev {
				p.errorf("%s: row_number %d after %d is not ascending", key, e.RowNumber, prev)
			}
			prev = e.RowNumber
			if e.Parameter == "" || e.LevelLayer == "" || e.ForecastValidTemplate == "" {
				p.errorf("%s row %d: empty required field", key, e.RowNumber)
			}
		}
	}
	return p
}

// ── Phase 2: Expansion Totality ──
// Every template expands for every forecast hour its set yields.

func validateExpansion(reg *inventory.Registry) *phase {
	p := &phase{name: "Phase 2: Expansion Totality"}

	var expanded int
	for _, key := range reg.Keys() {
		cfg, err := inventory.NewCycleRunConfig(reg, key.Region, key.Product, key.Set)
		if err != nil {
			p.errorf("%s: %v", key, err)
			continue
		}
		for _, hour := range cfg.Hours() {
			variables, ok := cfg.Variables(hour)
			if !ok {
				p.errorf("%s: hour %d missing from built config", key, hour)
				continue
			}
			for _, v := range variables {
				if v.ForecastValid == "" {
					p.errorf("%s hour %d row %d: empty forecast_valid", key, hour, v.RowNumber)
				}
			}
			expanded += len(variables)
		}
	}
	fmt.Printf("  expanded %d variables across %d tables\n", expanded, len(reg.Keys()))
	return p
}

// ── Phase 3: Ordering Preservation ──
// Variable order equals template order at every hour.

func validateOrdering(reg *inventory.Registry) *phase {
	p := &phase{name: "Phase 3: Ordering Preservation"}

	for _, key := range reg.Keys() {
		entries, err := reg.Templates(key.Region, key.Product, key.Set)
		if err != nil {
			p.errorf("%s: %v", key, err)
			continue
		}
		cfg, err := inventory.NewCycleRunConfig(reg, key.Region, key.Product, key.Set)
		if err != nil {
			p.errorf("%s: %v", key, err)
			continue
		}
		for _, hour := range cfg.Hours() {
			variables, _ := cfg.Variables(hour)
			if len(variables) != len(entries) {
				p.errorf("%s hour %d: %d variables for %d templates", key, hour, len(variables), len(entries))
				continue
			}
			for i := range entries {
				if variables[i].RowNumber != entries[i].RowNumber {
					p.errorf("%s hour %d position %d: row %d, template has %d",
						key, hour, i, variables[i].RowNumber, entries[i].RowNumber)
				}
			}
		}
	}
	return p
}

// ── Phase 4: Cycle Rules ──
// Set hours stay inside cycle bounds and the hour->set mapping partitions.

func validateCycleRules() *phase {
	p := &phase{name: "Phase 4: Cycle Rules"}

	for runHour := 0; runHour < 24; runHour++ {
		cycle := domain.CycleStandard
		if runHour%6 == 0 {
			cycle = domain.CycleExtended
		}
		if err := cycle.ValidateForecastHour(cycle.MaxForecastHour()); err != nil {
			p.errorf("run hour %02d: max hour rejected: %v", runHour, err)
		}
		if err := cycle.ValidateForecastHour(cycle.MaxForecastHour() + 1); err == nil {
			p.errorf("run hour %02d: hour past %s maximum accepted", runHour, cycle)
		}
	}

	for _, product := range domain.Products() {
		for hour := 0; hour <= 48; hour++ {
			if _, err := domain.ForecastHourSetFor(hour, product); err != nil {
				p.errorf("product %s hour %d: no forecast hour set: %v", product, hour, err)
			}
		}
	}

	for _, region := range domain.Regions() {
		ref := domain.LatestReferenceTime(region)
		if err := region.ValidateCycleRunHour(ref.Hour()); err != nil {
			p.errorf("region %s: latest reference time %s: %v", region, ref, err)
		}
	}

	return p
}
