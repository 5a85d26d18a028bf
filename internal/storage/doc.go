// Package storage keeps headless runs on disk. Each run is a directory
// named {sketch}_{unixnano} holding metadata.json and telemetry.csv.
package storage
