package vermin

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestGetUUID(t *testing.T) {
	convey.Convey("test get uuid", t, func() {
		u1 := GetUUID()
		convey.So(u1, convey.ShouldHaveLength, 36)
		convey.So(GetUUID(), convey.ShouldNotEqual, u1)
	})
}
