// Package main provides the ekm CLI, a profile-driven build front-end for
// C projects.
package main

func main() {
	Execute()
}
