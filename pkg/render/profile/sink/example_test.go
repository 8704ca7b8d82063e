package sink_test

import (
	"fmt"

	"github.com/geocore/geocore/pkg/render/profile/sink"
)

func ExampleResolveName() {
	for _, f := range []sink.Filter{sink.FilterRaster, sink.FilterVector} {
		name, _ := sink.ResolveName("profile", f)
		fmt.Println(name, sink.FormatOf(name))
	}
	name, _ := sink.ResolveName("profile.JPG", sink.FilterVector)
	fmt.Println(name, sink.FormatOf(name))
	// Output:
	// profile.png raster
	// profile.svg vector
	// profile.JPG raster
}
