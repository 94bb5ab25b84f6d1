// Package dashboard is the rendering boundary: it turns a cohort.Dataset and
// its insight figures into a render-ready four-panel description and into
// plain-text reports for the operator.
//
// Nothing here feeds back into the core. Build only reads its inputs, the
// Write* helpers only format, and FetchBackground is best-effort: callers log
// and drop its error and render without decorative art.
package dashboard
