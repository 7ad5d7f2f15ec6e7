//go:build android

package mobile

import "flappy"

// SetRecordDir tells the game where to keep the best score, usually the
// activity's files directory.
//
//export SetRecordDir
func SetRecordDir(path string) {
	flappy.SetRecordDir(path)
}
