// Package validator provides the result model shared by preflight's validators.
//
// Validators never print. They return a [Result] holding one [Issue] per
// finding, and the [Reporter] renders results for the console or as
// JSON/YAML for CI artifacts.
//
// # Core Concepts
//
//   - [Severity]: pass, info, warning (non-blocking) or error (blocking).
//   - [Issue]: a single finding with the dotted field it concerns.
//   - [Result]: the issues for one file; OK when there are no errors.
//   - [FieldRequirement] and [Checklist]: literal key checklists with a
//     required/optional classification.
//
// # Basic Usage
//
//	result := validator.NewResult("package.json")
//	validator.Checklist{
//		Kind:   "field",
//		Fields: validator.RequiredFields("name", "version"),
//	}.Check(result, doc)
//
//	if !result.OK() {
//		// at least one required key is missing
//	}
package validator
