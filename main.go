package main

import "github.com/Tisaghu/Work-Billing-Tracker/cmd"

func main() {
	cmd.Execute()
}
