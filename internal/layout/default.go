package layout

import "fmt"

// Fixed strings of the VEREFINE demo bringup.
const (
	// DefaultSessionName is the name of the demo session.
	DefaultSessionName = "VEREFINE"

	// FinalWindowName is the title given to the active window after bringup.
	FinalWindowName = "grasping"

	// MotionPlanningCommand starts the motion-planning stack.
	MotionPlanningCommand = "roslaunch hsrb_moveit_config hsrb_demo_with_controller.launch"

	// StateMachineCommand starts the grasping state machine.
	StateMachineCommand = "roslaunch grasping_pipeline statemachine.launch"

	// DetectionCommand starts the grasping-detection service.
	DetectionCommand = "roslaunch verefine_pipeline pose_estimation.launch"
)

// SourceCommand returns the command that sources the workspace setup file.
func SourceCommand(workspace string) string {
	return fmt.Sprintf("source %s/devel/setup.bash", workspace)
}

// Default builds the VEREFINE demo layout: window 0 split into a
// motion-planning pane and a state-machine pane, window 1 running the
// detection service, window 0 re-selected and renamed at the end.
//
// The motion-planning launch is injected as text only with its Enter
// keypress sent separately, and the state-machine pane receives a trailing
// detached Enter; both quirks are carried over from the original bringup
// script on purpose. The same goes for the final selection of pane 2,
// which does not exist under the two-pane split and ends up a no-op.
func Default(workspace string) Layout {
	source := SourceCommand(workspace)

	return Layout{
		SessionName: DefaultSessionName,
		Mouse:       true,
		Windows: []Window{
			{
				Panes: []Pane{
					{
						Steps: []Step{
							{Keys: source, Submit: true},
							{Keys: MotionPlanningCommand, Submit: false},
							{Submit: true}, // Enter for the launch above
						},
					},
					{
						Steps: []Step{
							{Keys: source, Submit: true},
							{Keys: StateMachineCommand, Submit: true},
							{Submit: true},
						},
					},
				},
			},
			{
				Panes: []Pane{
					{
						Steps: []Step{
							{Keys: source, Submit: true},
							{Keys: DetectionCommand, Submit: true},
						},
					},
				},
			},
		},
		FinalSelection: Selection{Window: 0, Pane: 2},
		RenameTo:       FinalWindowName,
	}
}
