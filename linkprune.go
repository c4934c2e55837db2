// Package linkprune validates the links in a bookmark collection and
// produces a pruned copy with unreachable entries removed. It probes every
// link target concurrently, retrying transient network failures, and
// partitions the results into valid and invalid sets for the caller to act
// on.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/), and orchestration
// lives in check/.
package linkprune
