package handler

import (
	"sync"
	"theatre_manager/helper"

	"github.com/cloudinary/cloudinary-go/v2"
)

var (
	cldOnce sync.Once
	cld     *cloudinary.Cloudinary
)

func getCloudinary() *cloudinary.Cloudinary {
	cldOnce.Do(func() {
		cld = helper.InitCloudinary()
	})
	return cld
}
