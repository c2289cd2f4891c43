// Package domain models Windguru forecast data for foiling spots.
//
// # Data Source
//
// Forecast series are scraped from windguru.cz spot pages by the upstream
// collector service, one table per forecast model. The collector publishes a
// site bundle to the Kafka source topic: the numeric spot id plus the raw
// per-model hourly series, values kept as the strings shown in the table.
// Two models matter here:
//
//	"AROME 1.3km"  Météo-France high-resolution model, ~2 days of hours.
//	"WG"           Windguru's GFS-based model, ~8 days of hours.
//
// # Windguru Conventions
//
// Hour labels:
//
//	"<weekday><day-of-month>.<hour>h"  →  e.g. "Mo14.13h"
//	means Monday the 14th at 13:00 local time. Weekday abbreviations appear
//	in English (Mo, Tu, We, Th, Fr, Sa, Su) or French (Lu, Ma, Me, Je, Ve,
//	Sa, Di) depending on the page locale. Labels identify hours across
//	models: the same label in both models is the same forecast hour.
//
// Units:
//
//	Wind and gusts in knots, direction in compass degrees (0-360, 0 = north),
//	temperature in °C, cloud cover per layer in percent, precipitation in
//	mm/1h. Cells the site leaves blank arrive as empty strings; they are
//	carried through, never invented.
//
// Night window:
//
//	Hours with clock hour >= 20 or <= 7 count as night. Labels that do not
//	parse count as day, so a bad label can only withhold the night penalty,
//	never apply it.
//
// # Fusion
//
// [FuseSeries] merges the two models into one hour-indexed series. AROME
// hours come first in their original order, then WG hours not already
// present. Every metric for a given hour comes from the model that
// contributed the hour; the per-hour source tag records which one.
//
// # Scoring
//
// [Rate] computes a 0-3 star rating per hour as the product A*B*C*D*E:
//
//	A: wind quality 0-3 from the site's moderate/good/great thresholds,
//	   gusts qualify or disqualify the middle tiers.
//	B: 1 when wind direction falls in a favorable arc, else 0.
//	C: 1 during the day, 0 at night.
//	D: 1 when precipitation is zero, else 0.
//	E: 1 when temperature >= 5°C, else 0.
//
// Hours with any unparseable metric get no rating at all, which renderers
// must distinguish from a rated zero.
//
// # Colors
//
// [WindColor] maps a knot value onto a progressive scale anchored at the
// site's thresholds: pale blue below moderate, blending green at good,
// orange at great, saturating red at good+10. [TemperatureColor] uses fixed
// bands shared by all sites. Both return CSS color strings so renderers
// stay trivial.
package domain
