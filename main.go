// Command library-sync mirrors a Steam account's owned games into a Notion
// database.
package main

import "library-sync/cmd"

func main() {
	cmd.Execute()
}
