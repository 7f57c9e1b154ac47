package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/huang190105/wisdom-operations-master/configs"
)

func newConfigCmd(c *cliContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "配置文件管理",
	}

	var (
		env  string
		out  string
		over bool
	)
	templateCmd := &cobra.Command{
		Use:   "template",
		Short: "输出内置配置模板",
		Example: `  wisdom-keystore config template --env prod
  wisdom-keystore config template --env dev --out ./config.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := configs.GetConfig(env)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
			if over {
				flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
			}
			f, err := os.OpenFile(out, flags, 0o644)
			if err != nil {
				return fmt.Errorf("写入配置文件失败: %w", err)
			}
			if _, err := f.Write(data); err != nil {
				f.Close()
				return fmt.Errorf("写入配置文件失败: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("写入配置文件失败: %w", err)
			}
			c.formatter.PrintSuccess(fmt.Sprintf("配置模板已写入 %s", out))
			return nil
		},
	}
	templateCmd.Flags().StringVar(&env, "env", "prod", "环境: dev|test|prod")
	templateCmd.Flags().StringVar(&out, "out", "", "写入文件路径（默认输出到标准输出）")
	templateCmd.Flags().BoolVar(&over, "force", false, "覆盖已存在的文件")

	configCmd.AddCommand(templateCmd)
	return configCmd
}
