// Package topicviz turns topic-modeling output folders into self-contained
// static HTML/CSS/JS visualization bundles. It parses a fixed folder-naming
// convention to recover dataset/method/topic-count metadata, copies known
// artifact files into a fixed output layout, and renders a handful of static
// pages drawn client-side by a charting library.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g. fs/, goquery/, sqlite/).
package topicviz
