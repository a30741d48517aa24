package main

import "gameshelf/backend/cmd/shelfctl/commands"

func main() {
	commands.Execute()
}
