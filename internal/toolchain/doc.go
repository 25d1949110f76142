// Package toolchain detects a host C++ compiler and builds the command
// lines to invoke it. Two dialects are understood: the GNU-style driver
// interface shared by g++ and clang++, and the MSVC cl interface, which
// differs in flag syntax, always produces an .exe, and leaves an
// intermediate .obj file behind that the caller is expected to remove.
package toolchain
