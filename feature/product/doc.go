// Package product exposes the version reconciler over HTTP.
//
// The feature serves four endpoints under /product:
//
//   - GET /product/status: discovers the archive's true version, plans
//     against the record store and reports drift without writing.
//   - GET /product/records: dumps the current contents of both record
//     groups as the store holds them.
//   - POST /product/reconcile: runs a full reconcile; ?dry=true stops
//     after the plan.
//   - GET /product/health: checks the database and release bucket
//     concurrently.
//
// Status responses are cached for a short TTL with stampede protection,
// since computing one costs an archive read plus a store scan and
// dashboards tend to poll it.
//
// The feature follows the service/handler split: the Service owns the
// collaborators and the reconcile flow, the Handler owns HTTP concerns
// and error-to-status mapping.
package product
