// naraweb serves generated stage templates and sprite sheets over HTTP.
//
// It is a development aid: point it at a directory of .nara documents and
// a sprite directory, then browse /templates, /random and
// /sheet/{prefix}_walk.png while iterating on assets.
package main

import (
	"flag"
	"net/http"
	"os"

	"badc0de.net/pkg/flagutil/v1"

	"badc0de.net/pkg/go-nara/web"

	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	_ "golang.org/x/net/trace"
)

var (
	listenAddress      = flag.String("listen_address", ":8080", "http listen address for naraweb")
	debugListenAddress = flag.String("debug_listen_address", "", "where the debug server will listen, if anywhere")
	templatesDir       = flag.String("templates_dir", "./generated-templates", "directory with .nara documents")
	spritesDir         = flag.String("sprites_dir", "public/sprites", "directory with {prefix}_{direction}.png sources")
)

func main() {
	flagutil.Parse()

	figure.NewFigure("naraweb", "", true).Print()

	r := mux.NewRouter()
	web.NewHandler(*templatesDir, *spritesDir).RegisterRoutes(r)

	if *debugListenAddress != "" {
		// x/net/trace registers its handlers on the default mux.
		go http.ListenAndServe(*debugListenAddress, nil)
	}

	glog.Infof("naraweb listening on %s", *listenAddress)
	glog.Fatal(http.ListenAndServe(*listenAddress, handlers.CombinedLoggingHandler(os.Stderr, r)))
}
