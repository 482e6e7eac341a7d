package main

import (
	"fmt"
	"strings"

	"github.com/termfx/sysml-core/token"
)

// dialectFromFlagOrExt resolves the dialect to parse under: an explicit
// --dialect flag wins, otherwise it is inferred from the file extension
// (.kerml/.kdl -> KerML, everything else -> SysML, matching this
// ecosystem's convention that SysML is the common case).
func dialectFromFlagOrExt(flag string, path string) (token.Dialect, error) {
	switch strings.ToLower(flag) {
	case "":
		// fall through to extension inference
	case "sysml":
		return token.SysML, nil
	case "kerml":
		return token.KerML, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q (want sysml or kerml)", flag)
	}

	if strings.HasSuffix(path, ".kerml") || strings.HasSuffix(path, ".kdl") {
		return token.KerML, nil
	}
	return token.SysML, nil
}
