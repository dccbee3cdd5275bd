// Package jobs contains the scheduled background work of the application.
//
// The only job today is the stale order sweep: orders that stay in Ordered
// status past a configured age are cancelled on behalf of the counter. Jobs
// run on cron schedules and go through the same command handlers as the HTTP
// API, so business rules and domain events are identical on both paths.
package jobs
