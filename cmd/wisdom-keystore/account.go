package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/huang190105/wisdom-operations-master/internal/app"
	"github.com/huang190105/wisdom-operations-master/internal/core/infrastructure/crypto/key"
	"github.com/huang190105/wisdom-operations-master/internal/core/keystore"
	"github.com/huang190105/wisdom-operations-master/pkg/types"
)

// recordFlags 定位 keystore 记录的标志
type recordFlags struct {
	file     string
	password string
}

// newAccountCmd 账户相关命令
func newAccountCmd(c *cliContext) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "账户管理",
		Long:  "创建、恢复、查看账户 keystore 以及修改口令",
	}

	accountCmd.AddCommand(newAccountNewCmd(c))
	accountCmd.AddCommand(newAccountRecoverCmd(c))
	accountCmd.AddCommand(newAccountShowCmd(c))
	accountCmd.AddCommand(newAccountPasswdCmd(c))
	return accountCmd
}

// newAccountNewCmd 创建新账户
func newAccountNewCmd(c *cliContext) *cobra.Command {
	var (
		password string
		outFile  string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "创建新账户",
		Long: `生成新的 Ed25519 密钥对，用口令加密后保存到 keystore 存储。

口令长度为 8-20 个字符。

示例：
  wisdom-keystore account new
  wisdom-keystore account new --out ./account.json
  wisdom-keystore account new --memory --password correcthorse1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.getApp()
			if err != nil {
				return err
			}

			if password == "" {
				password, err = c.promptNewPassword(cmd, "请输入密码")
				if err != nil {
					return err
				}
			}

			ks, err := a.Manager.CreateKeystore(password)
			if err != nil {
				return fmt.Errorf("创建账户失败: %w", err)
			}
			if err := a.Repository.Save(cmd.Context(), ks); err != nil {
				return err
			}
			if outFile != "" {
				if err := writeRecordFile(outFile, ks, false); err != nil {
					return err
				}
			}

			c.formatter.PrintSuccess(fmt.Sprintf("账户创建成功: %s", ks.Address))
			if c.flags.InMemory {
				c.formatter.PrintWarning("当前使用内存存储，进程退出后记录丢失，请使用 --out 导出")
			}
			return c.formatter.Print(map[string]interface{}{
				"address":     ks.Address,
				"id":          ks.ID,
				"storage_key": keystore.StorageKey(ks.Address),
				"file":        outFile,
			})
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "账户口令（不提供时交互输入）")
	cmd.Flags().StringVar(&outFile, "out", "", "同时将 keystore 写入该 JSON 文件")
	return cmd
}

// newAccountRecoverCmd 用口令解锁账户
func newAccountRecoverCmd(c *cliContext) *cobra.Command {
	var (
		rf          recordFlags
		showPrivate bool
	)

	cmd := &cobra.Command{
		Use:   "recover [address]",
		Short: "用口令恢复私钥",
		Long: `从存储或 --file 读取 keystore，用口令校验 MAC、解密私钥并重算地址核对。

默认只报告校验结果；--show-private 会输出私钥明文，请确认终端环境安全。`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.getApp()
			if err != nil {
				return err
			}
			ks, err := c.loadRecord(cmd, a, rf, args)
			if err != nil {
				return err
			}
			password, err := c.passwordOrPrompt(cmd, rf.password, "请输入密码")
			if err != nil {
				return err
			}

			privateKey, err := a.Manager.RecoverPrivateKey(ks, password)
			if err != nil {
				return describeRecoverError(err)
			}
			defer key.SecureWipe(privateKey)

			result := map[string]interface{}{
				"address":  ks.Address,
				"id":       ks.ID,
				"verified": true,
			}
			if showPrivate {
				c.formatter.PrintWarning("私钥明文已输出，请勿在不安全的环境中保存")
				result["private_key"] = hex.EncodeToString(privateKey)
			}
			c.formatter.PrintSuccess("口令正确，私钥已恢复并通过地址校验")
			return c.formatter.Print(result)
		},
	}

	addRecordFlags(cmd, &rf)
	cmd.Flags().BoolVar(&showPrivate, "show-private", false, "输出私钥明文（hex）")
	return cmd
}

// newAccountShowCmd 查看 keystore 记录
func newAccountShowCmd(c *cliContext) *cobra.Command {
	var rf recordFlags

	cmd := &cobra.Command{
		Use:   "show [address]",
		Short: "查看 keystore 记录",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.getApp()
			if err != nil {
				return err
			}
			ks, err := c.loadRecord(cmd, a, rf, args)
			if err != nil {
				return err
			}
			return c.formatter.Print(ks)
		},
	}

	cmd.Flags().StringVar(&rf.file, "file", "", "从 JSON 文件读取 keystore")
	return cmd
}

// newAccountPasswdCmd 修改口令
func newAccountPasswdCmd(c *cliContext) *cobra.Command {
	var (
		rf          recordFlags
		newPassword string
	)

	cmd := &cobra.Command{
		Use:   "passwd [address]",
		Short: "修改账户口令",
		Long: `用旧口令解密私钥，再以新口令、新的盐值和 IV 重新加密。

新记录会写回存储；使用 --file 时同时覆盖该文件。地址保持不变。`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.getApp()
			if err != nil {
				return err
			}
			ks, err := c.loadRecord(cmd, a, rf, args)
			if err != nil {
				return err
			}
			oldPassword, err := c.passwordOrPrompt(cmd, rf.password, "请输入当前密码")
			if err != nil {
				return err
			}
			if newPassword == "" {
				newPassword, err = c.promptNewPassword(cmd, "请输入新密码")
				if err != nil {
					return err
				}
			}

			updated, err := a.Manager.ChangePassword(ks, oldPassword, newPassword)
			if err != nil {
				return describeRecoverError(err)
			}
			if err := a.Repository.Save(cmd.Context(), updated); err != nil {
				return err
			}
			if rf.file != "" {
				if err := writeRecordFile(rf.file, updated, true); err != nil {
					return err
				}
			}

			c.formatter.PrintSuccess(fmt.Sprintf("口令已更新: %s", updated.Address))
			return c.formatter.Print(map[string]interface{}{
				"address": updated.Address,
				"id":      updated.ID,
			})
		},
	}

	addRecordFlags(cmd, &rf)
	cmd.Flags().StringVar(&newPassword, "new-password", "", "新口令（不提供时交互输入）")
	return cmd
}

func addRecordFlags(cmd *cobra.Command, rf *recordFlags) {
	cmd.Flags().StringVar(&rf.file, "file", "", "从 JSON 文件读取 keystore")
	cmd.Flags().StringVar(&rf.password, "password", "", "账户口令（不提供时交互输入）")
}

// loadRecord 从 --file 或存储中读取记录
func (c *cliContext) loadRecord(cmd *cobra.Command, a *app.App, rf recordFlags, args []string) (*types.Keystore, error) {
	if rf.file != "" {
		data, err := os.ReadFile(rf.file)
		if err != nil {
			return nil, fmt.Errorf("读取keystore文件失败: %w", err)
		}
		return keystore.Unmarshal(data)
	}
	if len(args) == 0 {
		return nil, errors.New("请提供账户地址或 --file")
	}
	return a.Repository.Load(cmd.Context(), args[0])
}

func (c *cliContext) passwordOrPrompt(cmd *cobra.Command, password, prompt string) (string, error) {
	if password != "" {
		return password, nil
	}
	return c.promptPassword(cmd, prompt)
}

// writeRecordFile 以 0600 权限写出记录，overwrite 为 false 时拒绝覆盖已有文件
func writeRecordFile(path string, ks *types.Keystore, overwrite bool) error {
	data, err := keystore.Marshal(ks)
	if err != nil {
		return err
	}

	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0600)
	if err != nil {
		return fmt.Errorf("写入keystore文件失败: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("写入keystore文件失败: %w", err)
	}
	return f.Close()
}

// describeRecoverError 为常见失败补充面向用户的提示
func describeRecoverError(err error) error {
	switch {
	case errors.Is(err, keystore.ErrAuthentication):
		return fmt.Errorf("口令错误或文件已损坏: %w", err)
	case errors.Is(err, keystore.ErrMalformedRecord):
		return fmt.Errorf("keystore 文件格式无效: %w", err)
	case errors.Is(err, keystore.ErrIntegrity):
		return fmt.Errorf("keystore 地址校验失败，文件可能被篡改: %w", err)
	default:
		return err
	}
}
