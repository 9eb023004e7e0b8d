// Package domain contains the core data model of an exploration: named
// states wired together by rule destinations, and gadgets docked to layout
// panels.
//
// State names are graph edges in disguise (rule specs hold destination
// state names by value), so the package funnels every name change through
// Exploration.RenameState, which rewrites all references atomically.
package domain
