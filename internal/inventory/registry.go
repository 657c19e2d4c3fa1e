// Package inventory owns the packaged HRRR layer tables and expands them
// into per-forecast-hour inventories. The tables ship with the binary as
// embedded CSV files, one per (region, product, forecast-hour set)
// combination, and are loaded exactly once into a read-only registry.
package inventory

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/couchcryptid/hrrr-inventory/internal/domain"
	"github.com/couchcryptid/hrrr-inventory/internal/observability"
)

//go:embed data/*.csv
var tableFS embed.FS

// tableFileFormat names a packaged table from its key:
// inventory__{region}__{product}__{set}.csv. The convention is authoritative;
// the registry resolves every fixed combination through it.
const tableFileFormat = "data/inventory__%s__%s__%s.csv"

var tableHeader = [...]string{"row_number", "level_layer", "parameter", "forecast_valid_template", "description"}

// ErrMissingTable reports a (region, product, set) combination with no loaded
// template table. The packaged data covers every fixed combination, so this
// is a startup-class failure, not a user-input one.
var ErrMissingTable = errors.New("no inventory table for combination")

// Key identifies one packaged layer table.
type Key struct {
	Region  domain.Region
	Product domain.Product
	Set     domain.ForecastHourSet
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s", k.Region, k.Product, k.Set)
}

// Registry holds every packaged layer table, loaded eagerly at construction.
// After NewRegistry returns, the registry is immutable and safe for
// unsynchronized concurrent reads.
type Registry struct {
	tables  map[Key][]domain.TemplateEntry
	metrics *observability.Metrics
}

// NewRegistry loads the packaged table for every fixed (region, product, set)
// combination. Any missing or malformed table fails the whole load. Pass nil
// metrics to disable instrumentation.
func NewRegistry(logger *slog.Logger, metrics *observability.Metrics) (*Registry, error) {
	start := time.Now()
	r := &Registry{
		tables:  make(map[Key][]domain.TemplateEntry),
		metrics: metrics,
	}

	for _, region := range domain.Regions() {
		for _, product := range domain.Products() {
			for _, set := range product.ForecastHourSets() {
				key := Key{Region: region, Product: product, Set: set}
				entries, err := loadTable(key)
				if err != nil {
					return nil, fmt.Errorf("load inventory table %s: %w", key, err)
				}
				r.tables[key] = entries

				if metrics != nil {
					metrics.TablesLoaded.Inc()
					metrics.TemplatesLoaded.Add(float64(len(entries)))
				}
			}
		}
	}

	if metrics != nil {
		metrics.RegistryLoadDuration.Observe(time.Since(start).Seconds())
	}
	logger.Info("inventory registry loaded", "tables", len(r.tables))

	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the process-wide registry, loading it on first use. The
// load happens exactly once; a load failure is sticky and returned to every
// caller, since bad packaged data cannot heal at runtime.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = NewRegistry(slog.Default(), nil)
	})
	return defaultRegistry, defaultErr
}

// Templates returns the ordered template entries for a combination. The order
// is the canonical layer order of the source GRIB file. Fails with
// ErrMissingTable for combinations outside the fixed mapping.
func (r *Registry) Templates(region domain.Region, product domain.Product, set domain.ForecastHourSet) ([]domain.TemplateEntry, error) {
	key := Key{Region: region, Product: product, Set: set}
	entries, ok := r.tables[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingTable, key)
	}
	out := make([]domain.TemplateEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// Keys returns every loaded table key.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.tables))
	for _, region := range domain.Regions() {
		for _, product := range domain.Products() {
			for _, set := range product.ForecastHourSets() {
				k := Key{Region: region, Product: product, Set: set}
				if _, ok := r.tables[k]; ok {
					keys = append(keys, k)
				}
			}
		}
	}
	return keys
}

// loadTable reads and parses one embedded CSV table, preserving row order.
func loadTable(key Key) ([]domain.TemplateEntry, error) {
	name := fmt.Sprintf(tableFileFormat, key.Region, key.Product, key.Set)
	f, err := tableFS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no data rows in %s", name)
	}

	if len(records[0]) != len(tableHeader) {
		return nil, fmt.Errorf("unexpected header %v in %s", records[0], name)
	}
	for i, col := range tableHeader {
		if records[0][i] != col {
			return nil, fmt.Errorf("unexpected header %v in %s", records[0], name)
		}
	}

	entries := make([]domain.TemplateEntry, 0, len(records)-1)
	for i, rec := range records[1:] {
		rowNumber, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad row_number %q", i+2, rec[0])
		}
		entries = append(entries, domain.TemplateEntry{
			RowNumber:             rowNumber,
			LevelLayer:            rec[1],
			Parameter:             rec[2],
			ForecastValidTemplate: rec[3],
			Description:           rec[4],
		})
	}
	return entries, nil
}
