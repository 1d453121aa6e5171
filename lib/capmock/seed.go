// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

package capmock

import (
	"fmt"

	"github.com/roster-works/roster/lib/capability"
)

// defaultSeed is the built-in roster served when no seed fixture is
// given. Same JSONC format as fixture files: the GET /capabilities
// object shape, with comments allowed.
const defaultSeed = `{
	// A small but representative roster: markdown descriptions, one
	// pre-registered consultant, and one empty offering so the
	// "No consultants registered yet" path is visible immediately.
	"Cloud Migration": {
		"description": "Lift-and-shift and re-platforming engagements.\n\n## Typical scope\n\n- Landing zone design\n- Workload assessment and wave planning\n- Cutover rehearsal and execution\n",
		"practice_area": "Cloud",
		"industry_verticals": ["Finance", "Retail"],
		"capacity": 120,
		"consultants": ["ines.walker@example.com"],
	},
	"Data Engineering": {
		"description": "Batch and streaming pipeline builds.\n\nReference stack:\n\n` + "```" + `\nsource -> ingest -> lakehouse -> serving\n` + "```" + `\n",
		"practice_area": "Data & AI",
		"industry_verticals": ["Logistics"],
		"capacity": 80,
		"consultants": [],
	},
	"Security Audit": {
		"description": "Point-in-time security posture reviews with a findings report and remediation backlog.",
		"practice_area": "Security",
		"capacity": 40,
		"consultants": ["priya.raman@example.com", "tom.okafor@example.com"],
	},
	"Machine Learning": {
		"description": "Model development and MLOps enablement. **Scoping call required** before registration.",
		"practice_area": "Data & AI",
		"industry_verticals": ["Healthcare", "Manufacturing"],
		"consultants": [],
	},
}
`

// DefaultSnapshot parses the built-in roster.
func DefaultSnapshot() (capability.Snapshot, error) {
	snapshot, err := capability.ParseSeed([]byte(defaultSeed))
	if err != nil {
		return capability.Snapshot{}, fmt.Errorf("built-in seed: %w", err)
	}
	return snapshot, nil
}
