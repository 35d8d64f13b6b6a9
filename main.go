package main

import "github.com/ahmedfaresabdelghani/event-cost-calculator/cmd"

func main() {
	cmd.Execute()
}
