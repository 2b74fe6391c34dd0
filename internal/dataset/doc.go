// Package dataset holds the yearly typhoon table the charts are drawn from.
//
// The built-in table ([HongKong]) covers 2002-2023 and carries per-year detail
// (notable storm names, peak wind, damage level). Datasets are immutable once
// constructed; every accessor returns copies.
//
// The scale helpers ([SafeRatio], [BaseX], [BaseY], [HeartScales]) map counts
// onto chart coordinates and fall back to a neutral ratio of 1.0 when a
// denominator would be zero.
package dataset
