package main

import "i18next-typesafe/cmd"

func main() {
	cmd.Execute()
}
