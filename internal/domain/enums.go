package domain

import "fmt"

// Region identifies the model domain the archive file covers.
type Region string

const (
	RegionCONUS  Region = "conus"
	RegionAlaska Region = "alaska"
)

// Regions lists all regions in declaration order.
func Regions() []Region {
	return []Region{RegionCONUS, RegionAlaska}
}

// ParseRegion maps a wire token to a Region.
func ParseRegion(s string) (Region, error) {
	switch Region(s) {
	case RegionCONUS, RegionAlaska:
		return Region(s), nil
	default:
		return "", fmt.Errorf("%w: region %q", ErrInvalidEnum, s)
	}
}

func (r Region) String() string { return string(r) }

// Product identifies one of the four file types published per model run.
type Product string

const (
	ProductPressure  Product = "prs"
	ProductNative    Product = "nat"
	ProductSurface   Product = "sfc"
	ProductSubHourly Product = "subh"
)

// Products lists all products in declaration order.
func Products() []Product {
	return []Product{ProductPressure, ProductNative, ProductSurface, ProductSubHourly}
}

// ParseProduct maps a wire token to a Product.
func ParseProduct(s string) (Product, error) {
	switch Product(s) {
	case ProductPressure, ProductNative, ProductSurface, ProductSubHourly:
		return Product(s), nil
	default:
		return "", fmt.Errorf("%w: product %q", ErrInvalidEnum, s)
	}
}

func (p Product) String() string { return string(p) }

// Description returns the human title used in reports and catalog metadata.
func (p Product) Description() string {
	switch p {
	case ProductSurface:
		return "2D Surface Levels"
	case ProductPressure:
		return "3D Pressure Levels"
	case ProductNative:
		return "Native Levels"
	case ProductSubHourly:
		return "2D Surface Levels - Sub Hourly"
	default:
		return ""
	}
}

// ForecastHourSets returns the forecast-hour sets this product's files are
// partitioned into. The mapping is fixed: sub-hourly files split at hour 0,
// everything else at hour 1.
func (p Product) ForecastHourSets() []ForecastHourSet {
	if p == ProductSubHourly {
		return []ForecastHourSet{SetFH00, SetFH01To18}
	}
	return []ForecastHourSet{SetFH00To01, SetFH02To48}
}
