package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// promptPassword 从终端读取口令（不回显）
//
// 标准输入不是终端时按行读取，便于脚本通过管道传入。
func (c *cliContext) promptPassword(cmd *cobra.Command, prompt string) (string, error) {
	in := cmd.InOrStdin()
	out := cmd.ErrOrStderr()
	fmt.Fprint(out, prompt+": ")

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("读取密码失败: %w", err)
		}
		return string(bytePassword), nil
	}

	if c.stdin == nil {
		c.stdin = bufio.NewReader(in)
	}
	line, err := c.stdin.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("读取密码失败: %w", err)
	}
	fmt.Fprintln(out)
	return strings.TrimRight(line, "\r\n"), nil
}

// promptNewPassword 读取新口令并确认
func (c *cliContext) promptNewPassword(cmd *cobra.Command, prompt string) (string, error) {
	password, err := c.promptPassword(cmd, prompt)
	if err != nil {
		return "", err
	}
	confirm, err := c.promptPassword(cmd, "请确认密码")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", fmt.Errorf("密码不匹配")
	}
	return password, nil
}
