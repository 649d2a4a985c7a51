package config

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/mihaicode/nemolaunch/pkg/api"
)

var CustomHooks = []viper.DecoderConfigOption{
	viper.DecodeHook(DatasetMountHookFunc()),
}

// DatasetMountHookFunc decodes the "<id>:<path>" strings used in config
// files into api.DatasetMount values.
func DatasetMountHookFunc() mapstructure.DecodeHookFuncType {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		// check that src and target types are valid
		if f.Kind() != reflect.String || t != reflect.TypeOf(api.DatasetMount{}) {
			return data, nil
		}
		return api.ParseDatasetMount(data.(string))
	}
}
