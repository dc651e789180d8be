// Package registry holds the parameter registry data model: the Parameter
// record, its sentinel-aware ID, document load/save, the repair passes
// (default-access backfill and ID auto-numbering), and the invariant checks
// that the JSON schema cannot express (duplicate IDs, ID type sanity).
//
// The registry document is a JSON object with a single "all" list:
//
//	{
//	  "all": [
//	    {"id": 1, "name": "BATTERY_LEVEL", "description": "...", ...},
//	    ...
//	  ]
//	}
//
// Records keep their document order through load, repair and save; sorting by
// ID happens only when artifacts are emitted.
package registry
