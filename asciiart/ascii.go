package asciiart

import (
	"github.com/cascii/verflow/log"
)

func PrintThumbsUp() {
	log.Println(`        __               __
       (  |             |  )
  _____ \  \           /  /_____
 (____ _)   \   ___   /   (_____)
 (_____ )  _)__(. .)__(_  ( _____)
 (__ ___)   )  |___|  (   (_  ___)
  (_____)__/   /_/\_\  \__(____)`)
}

func PrintShrug(msg string) {
	log.Println(`
   \_(o_o)_/`)
	log.Println(msg)
}
