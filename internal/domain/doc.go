// Package domain models the NOAA High-Resolution Rapid Refresh (HRRR)
// forecast archive layout: which model runs exist, which forecast hours each
// run produces, and how the layers inside an archived GRIB file describe the
// time window or instant their values represent.
//
// # Model Runs
//
// The HRRR model runs on a fixed cadence per region:
//
//	CONUS:  every hour (cycle run hours 00-23)
//	Alaska: every three hours (00, 03, ..., 21)
//
// Runs whose start hour is a multiple of six are "extended" cycles and carry
// forecasts out to 48 hours; all other runs are "standard" cycles and stop at
// 18 hours. A forecast hour is the integer offset (0-48) from the run's
// reference time.
//
// # Products and Forecast Hour Sets
//
// Each run publishes four products: surface (sfc), pressure (prs), native
// (nat), and sub-hourly (subh). The inventory of layers inside a GRIB file
// depends on which forecast-hour set the file belongs to:
//
//	sfc/prs/nat: fh00-01 (hours 00 and 01) or fh02-48 (hours 02 thru 48)
//	subh:        fh00 (hour 00 only) or fh01-18 (hours 01 thru 18)
//
// For a given product every forecast hour in 0-48 belongs to exactly one set.
//
// # Valid-Time Templates
//
// The packaged layer tables describe each layer's valid time as a template
// rather than a literal, because the text shifts with the forecast hour.
// Three shapes occur in the wgrib2-style inventories:
//
//	"analysis"               analysis at hour 0, "<fh> hour fcst" afterwards
//	"<n> <unit> fcst"        a single instant, e.g. "2 hour fcst", "15 min fcst"
//	"<a>-<b> <unit> <stat>"  a window with a statistic, e.g. "1-2 hour acc"
//
// Minute-based values advance by 60 per forecast hour (instants are anchored
// at hour 1, windows at hour 2). Hour-based windows end at the forecast hour
// and start at either hour-1 or 0 depending on the template; windows ending
// on an exact day boundary are re-expressed in days ("0-1 day acc"), matching
// how wgrib2 renders them. See [ExpandTemplate].
//
// # Archive Sources
//
// The archive is mirrored by three cloud providers with different retention
// horizons: AWS and Google hold data from 2014-07-30, Azure from 2021-03-21.
package domain
