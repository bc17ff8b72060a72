package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ompkit/wikidoc"
)

// callbackPrefix namespaces selection data so a surface multiplexing
// several controls can route ours back here.
const callbackPrefix = "wiki"

// EncodeCallback packs a session id and hit index into the opaque data
// attached to a results button.
func EncodeCallback(sessionID string, index int) string {
	return fmt.Sprintf("%s:%s:%d", callbackPrefix, sessionID, index)
}

// ParseCallback unpacks selection data produced by EncodeCallback.
// Anything malformed is EINVALID.
func ParseCallback(data string) (sessionID string, index int, err error) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 || parts[0] != callbackPrefix || parts[1] == "" {
		return "", 0, wikidoc.Errorf(wikidoc.EINVALID, "Invalid selection.")
	}
	index, aerr := strconv.Atoi(parts[2])
	if aerr != nil || index < 0 {
		return "", 0, wikidoc.Errorf(wikidoc.EINVALID, "Invalid selection.")
	}
	return parts[1], index, nil
}
