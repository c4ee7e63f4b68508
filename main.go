// Command sketchucam-gcode-optimizer shortens the tool travel of G-code
// produced by the SketchUCam post-processor.
package main

import "github.com/razeh/sketchucam-gcode-optimizer/cmd"

func main() {
	cmd.Execute()
}
