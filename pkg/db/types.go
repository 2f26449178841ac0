package db

type DBConfig struct {
	URI              string
	DBNamePrefix     string
	Timeout          int
	NoCursorTimeout  bool
	MaxPoolSize      uint64
	IdleConnTimeout  int
	InstanceIDs      []string
	RunIndexCreation bool
}

// DBConfigYaml is the connection config shape used in the service and
// job config files; DBConfigFromYamlObj turns it into a DBConfig.
type DBConfigYaml struct {
	ConnectionStr      string `json:"connection_str" yaml:"connection_str"`
	Username           string `json:"username" yaml:"username"`
	Password           string `json:"password" yaml:"password"`
	ConnectionPrefix   string `json:"connection_prefix" yaml:"connection_prefix"`
	Timeout            int    `json:"timeout" yaml:"timeout"`
	IdleConnTimeout    int    `json:"idle_conn_timeout" yaml:"idle_conn_timeout"`
	MaxPoolSize        int    `json:"max_pool_size" yaml:"max_pool_size"`
	UseNoCursorTimeout bool   `json:"use_no_cursor_timeout" yaml:"use_no_cursor_timeout"`
	DBNamePrefix       string `json:"db_name_prefix" yaml:"db_name_prefix"`
	RunIndexCreation   bool   `json:"run_index_creation" yaml:"run_index_creation"`
}
