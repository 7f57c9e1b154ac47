package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huang190105/wisdom-operations-master/internal/app"
	"github.com/huang190105/wisdom-operations-master/internal/app/version"
	"github.com/huang190105/wisdom-operations-master/internal/cli/output"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	ConfigPath   string // 配置文件路径
	InMemory     bool   // 使用内存存储
	OutputFormat string // 输出格式
	Silent       bool   // 静默模式
}

// cliContext 命令执行期间共享的状态
type cliContext struct {
	flags     GlobalFlags
	formatter *output.Formatter
	app       *app.App
	stdin     *bufio.Reader // 非终端输入时共享，避免多次提示丢失缓冲数据
}

// newRootCmd 构建命令树
func newRootCmd() *cobra.Command {
	c := &cliContext{}

	rootCmd := &cobra.Command{
		Use:   "wisdom-keystore",
		Short: "Wisdom keystore 命令行工具",
		Long: `wisdom-keystore 创建、恢复和管理口令保护的账户私钥文件。

私钥使用 Argon2id 派生的密钥以 AES-256-CTR 加密，
并以 keccak256(derivedKey‖ciphertext) 作为完整性校验。`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(c.flags.OutputFormat)
			if err != nil {
				return err
			}
			c.formatter = output.NewFormatter(format, cmd.OutOrStdout())
			c.formatter.SetLogWriter(cmd.ErrOrStderr())
			c.formatter.SetSilent(c.flags.Silent)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.flags.ConfigPath, "config", "", "配置文件路径（默认读取 WISDOM_CONFIG）")
	rootCmd.PersistentFlags().BoolVar(&c.flags.InMemory, "memory", false, "使用内存存储，记录不落盘")
	rootCmd.PersistentFlags().StringVarP(&c.flags.OutputFormat, "output", "o", "pretty", "输出格式: json|pretty|table")
	rootCmd.PersistentFlags().BoolVar(&c.flags.Silent, "silent", false, "静默模式 (仅输出错误)")

	rootCmd.AddCommand(newAccountCmd(c))
	rootCmd.AddCommand(newConfigCmd(c))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// getApp 按需装配应用，同一次执行只装配一次
func (c *cliContext) getApp() (*app.App, error) {
	if c.app != nil {
		return c.app, nil
	}

	opts := []app.Option{app.WithConfigFile(c.flags.ConfigPath)}
	if c.flags.InMemory {
		opts = append(opts, app.WithInMemoryStorage())
	}
	a, err := app.New(opts...)
	if err != nil {
		return nil, err
	}
	c.app = a
	return a, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "显示版本信息",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersion())
		},
	}
}
