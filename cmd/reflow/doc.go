// Command reflow is the incremental task runner CLI.
//
// reflow run drives the taskfile to a fixed point; reflow status reports task
// staleness and run history without executing anything; reflow config manages
// the optional tool settings file.
package main
