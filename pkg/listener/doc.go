// Package listener defines the SolutionListener contract the driver
// reports through: an improving solution found mid-phase, or the final
// solution at shutdown. Two implementations ship: a console listener in
// the teacher's plain fmt.Printf style, and a JSON-lines listener for
// piping into tooling.
package listener
