package ui

import twmerge "github.com/Oudwins/tailwind-merge-go"

// Class merges Tailwind class lists. Later utilities win over conflicting
// earlier ones, so components can take caller overrides on top of defaults.
func Class(classes ...string) string {
	return twmerge.Merge(classes...)
}
