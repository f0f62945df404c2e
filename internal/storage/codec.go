// SPDX-License-Identifier: MIT

package storage

import (
	"encoding/json"
	"fmt"
)

// CurrentSchemaVersion is stamped on every encoded run.
const CurrentSchemaVersion = 1

// EncodeRun stamps the schema version and marshals run.
func EncodeRun(run Run) ([]byte, error) {
	run.SchemaVersion = CurrentSchemaVersion

	return json.Marshal(run)
}

// DecodeRun unmarshals a run and checks its schema version.
func DecodeRun(data []byte) (Run, error) {
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return Run{}, err
	}
	if run.SchemaVersion != CurrentSchemaVersion {
		return Run{}, fmt.Errorf("run %s has schema %d: %w", run.ID, run.SchemaVersion, ErrVersionMismatch)
	}

	return run, nil
}
