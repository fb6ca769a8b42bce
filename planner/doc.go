// Package planner holds the pure decision logic of the meetup planner:
// lifecycle classification, date-poll tallying and finalization, shopping
// list scaling, cost splitting and availability replacement. Functions here
// take an in-memory snapshot and return values or typed errors; persistence
// is the caller's problem.
package planner
