package config

var DefaultConfig Config

func init() {
	DefaultConfig = Config{
		ListenAddr: ":8080",
		Symbols: Symbols{
			First:  'x',
			Second: 'o',
			Empty:  '-',
		},
	}
}
