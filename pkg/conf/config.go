package conf

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Option interface {
	apply(v *viper.Viper)
}

type optionFunc func(v *viper.Viper)

func (f optionFunc) apply(v *viper.Viper) {
	f(v)
}

func EnvPrefix(prefix string) Option {
	return optionFunc(func(v *viper.Viper) {
		v.SetEnvPrefix(prefix)
	})
}

// ConfigFile makes ParseConfig read the given file before looking at the
// environment. Empty path is ignored.
func ConfigFile(path string) Option {
	return optionFunc(func(v *viper.Viper) {
		if len(path) > 0 {
			v.SetConfigFile(path)
		}
	})
}

// Defaults are keyed by dotted paths, e.g. "server.listenaddress".
func Defaults(values map[string]interface{}) Option {
	return optionFunc(func(v *viper.Viper) {
		for key, value := range values {
			v.SetDefault(key, value)
		}
	})
}

// https://github.com/spf13/viper/issues/188#issuecomment-399884438
func bindEnvs(v *viper.Viper, iface interface{}, parts ...string) error {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)

	if ifv.Kind() == reflect.Ptr {
		return bindEnvs(v, ifv.Elem().Interface(), parts...)
	}

	for i := 0; i < ift.NumField(); i++ {
		field := ifv.Field(i)
		t := ift.Field(i)
		name, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			name = t.Name
		}
		if field.Kind() == reflect.Struct {
			if err := bindEnvs(v, field.Interface(), append(parts, name)...); err != nil {
				return err
			}
			continue
		}
		if err := v.BindEnv(strings.Join(append(parts, name), ".")); err != nil {
			return err
		}
	}
	return nil
}

func ParseConfig(config interface{}, options ...Option) error {
	v := viper.New()
	for _, option := range options {
		option.apply(v)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if len(v.ConfigFileUsed()) > 0 {
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrap(err, "Failed to load config")
		}
	}

	if err := bindEnvs(v, config); err != nil {
		return errors.Wrap(err, "Failed to bind env variables")
	}

	if err := v.Unmarshal(config); err != nil {
		return errors.Wrap(err, "Failed to unmarshal config")
	}

	return nil
}
